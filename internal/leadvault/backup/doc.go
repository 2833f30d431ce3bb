// Package backup 实现 LeadVault 的备份与恢复引擎
//
// 快照是整库导出加上传文件树的完整拷贝，按保留类别
// （daily/monthly/yearly，manual 存放在 daily 下）存储：
//
//	<base>/<class>/<name>/
//	    dump.json        全部实体表的序列化导出
//	    files/           上传文件镜像
//	    manifest.json    最后写入，存在即表示快照完整
//
// 恢复是非破坏性合并：缺失的记录插入，已有的记录只有快照
// 时间戳严格更新时才更新，现有数据永远不会被删除。每次恢复
// 前会强制创建一个 manual 安全快照，失败则整体拒绝恢复。
// 自引用实体（users.manager_id）用两遍协议处理，合并完成后
// 有一遍引用修复，回填因历史删除而置空的外键。
package backup
